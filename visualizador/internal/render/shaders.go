package render

// Shader instanciado das cargas. A cor por instância viaja embutida na
// "linha de fundo" da matriz de transformação (componentes .w das três
// primeiras colunas, que numa transformação afim seriam 0): o raylib só
// sobe uma mat4 por instância, então a linha livre vira o slot de cor e é
// restaurada antes de transformar o vértice.
const chargeInstancedVertexShader = `
#version 330

in vec3 vertexPosition;
in vec3 vertexNormal;
in mat4 instanceTransform;

uniform mat4 mvp;

out vec4 fragColor;
out vec3 fragNormal;

void main() {
    vec3 cor = vec3(instanceTransform[0].w, instanceTransform[1].w, instanceTransform[2].w);

    mat4 model = instanceTransform;
    model[0].w = 0.0;
    model[1].w = 0.0;
    model[2].w = 0.0;
    model[3].w = 1.0;

    fragColor = vec4(cor, 1.0);
    fragNormal = normalize(mat3(model) * vertexNormal);

    gl_Position = mvp * model * vec4(vertexPosition, 1.0);
}
`

const chargeFragmentShader = `
#version 330

in vec4 fragColor;
in vec3 fragNormal;

uniform vec4 colDiffuse;

out vec4 finalColor;

void main() {
    // Iluminação básica
    vec3 lightDir = normalize(vec3(0.5, 1.0, 0.3));
    float diff = max(dot(normalize(fragNormal), lightDir), 0.0);
    vec3 light = vec3(0.45) + vec3(0.55) * diff;

    vec4 color = fragColor * colDiffuse;
    color.rgb *= light;

    finalColor = color;
}
`
